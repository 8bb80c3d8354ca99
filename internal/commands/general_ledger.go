package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/malakahq/ledger-engine/internal/application/dto"
	"github.com/malakahq/ledger-engine/internal/application/usecase"
	"github.com/malakahq/ledger-engine/internal/domain/service"
	infraPG "github.com/malakahq/ledger-engine/internal/infrastructure/postgres"
)

func newGeneralLedgerCommand() *cobra.Command {
	var (
		companyID string
		accountID string
	)

	cmd := &cobra.Command{
		Use:   "general-ledger",
		Short: "Print the normalized general ledger with running balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cid, err := uuid.Parse(companyID)
			if err != nil {
				return fmt.Errorf("invalid --company: %w", err)
			}
			aid := uuid.Nil
			if accountID != "" {
				if aid, err = uuid.Parse(accountID); err != nil {
					return fmt.Errorf("invalid --account: %w", err)
				}
			}

			_, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := usecase.NewGetGeneralLedger(
				infraPG.NewAccountRepo(pool),
				infraPG.NewLedgerEntryRepo(pool),
				service.NewNormalizer(),
			)

			resp, err := uc.Execute(ctx, dto.GetGeneralLedgerRequest{
				CompanyID: cid,
				AccountID: aid,
			})
			if err != nil {
				return err
			}

			slog.Info("general ledger normalized", "company_id", cid, "lines", len(resp.Lines))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (UUID)")
	cmd.Flags().StringVar(&accountID, "account", "", "restrict to one account ID (UUID)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}
