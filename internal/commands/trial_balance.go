package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/malakahq/ledger-engine/internal/application/dto"
	"github.com/malakahq/ledger-engine/internal/application/usecase"
	"github.com/malakahq/ledger-engine/internal/domain/service"
	infraPG "github.com/malakahq/ledger-engine/internal/infrastructure/postgres"
)

const dateLayout = "2006-01-02"

func newTrialBalanceCommand() *cobra.Command {
	var (
		companyID   string
		periodStart string
		periodEnd   string
	)

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Build a trial balance report for a company and period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cid, err := uuid.Parse(companyID)
			if err != nil {
				return fmt.Errorf("invalid --company: %w", err)
			}
			start, err := time.Parse(dateLayout, periodStart)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			end, err := time.Parse(dateLayout, periodEnd)
			if err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}

			_, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := usecase.NewBuildTrialBalance(
				infraPG.NewAccountRepo(pool),
				infraPG.NewLedgerEntryRepo(pool),
				service.NewTrialBalanceBuilder(),
			)

			resp, err := uc.Execute(ctx, dto.BuildTrialBalanceRequest{
				CompanyID:   cid,
				PeriodStart: start,
				PeriodEnd:   end,
			})
			if err != nil {
				return err
			}

			slog.Info("trial balance generated",
				"company_id", cid,
				"accounts", len(resp.Accounts),
				"is_balanced", resp.Summary.IsBalanced,
			)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company ID (UUID)")
	cmd.Flags().StringVar(&periodStart, "from", "", "period start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&periodEnd, "to", "", "period end date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
