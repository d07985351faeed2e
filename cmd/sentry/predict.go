package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fraudsentry/sentry/internal/cli"
	"github.com/fraudsentry/sentry/internal/common"
	"github.com/fraudsentry/sentry/internal/model"
)

func predictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score a single transaction",
		Long: `Send one transaction to the FraudSentry API for a fraud verdict with
feature attribution and, for flagged transactions, an analyst narrative.`,
		RunE: runPredict,
	}

	cmd.Flags().Float64("amount", 0, "Transaction amount")
	cmd.Flags().Float64("old-balance-org", 0, "Sender balance before the transfer")
	cmd.Flags().Float64("new-balance-orig", 0, "Sender balance after the transfer")
	cmd.Flags().Float64("old-balance-dest", 0, "Receiver balance before the transfer")
	cmd.Flags().Float64("new-balance-dest", 0, "Receiver balance after the transfer")
	cmd.Flags().String("model", "RF", "Model to consult (RF or XGB)")

	_ = cmd.MarkFlagRequired("amount")

	_ = viper.BindPFlag("predict.model", cmd.Flags().Lookup("model"))

	return cmd
}

func runPredict(cmd *cobra.Command, _ []string) error {
	modelType := strings.ToUpper(viper.GetString("predict.model"))
	if modelType != "RF" && modelType != "XGB" {
		return fmt.Errorf("unknown model %q (want RF or XGB)", modelType)
	}

	amount, _ := cmd.Flags().GetFloat64("amount")
	oldOrg, _ := cmd.Flags().GetFloat64("old-balance-org")
	newOrig, _ := cmd.Flags().GetFloat64("new-balance-orig")
	oldDest, _ := cmd.Flags().GetFloat64("old-balance-dest")
	newDest, _ := cmd.Flags().GetFloat64("new-balance-dest")

	backend, err := newBackend()
	if err != nil {
		return err
	}

	tx := model.Transaction{
		Amount:         amount,
		OldBalanceOrg:  oldOrg,
		NewBalanceOrig: newOrig,
		OldBalanceDest: oldDest,
		NewBalanceDest: newDest,
	}

	expl, err := backend.Predict(cmd.Context(), tx, modelType)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrScoringFailed, err)
	}

	if expl.IsFraud == 1 {
		fmt.Println(cli.FormatError(fmt.Sprintf("FRAUD DETECTED (%s, risk %.2f)", expl.ModelUsed, expl.RiskScore)))
	} else {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transaction appears safe (%s, risk %.2f)", expl.ModelUsed, expl.RiskScore)))
	}

	if len(expl.TopFactors) > 0 {
		fmt.Println(cli.BoldStyle.Render("Top risk factors:"))
		for _, f := range expl.TopFactors {
			fmt.Printf("  %-18s %+.2f\n", f.Feature, f.Impact)
		}
	}

	if expl.Narrative != "" {
		fmt.Println(cli.BoldStyle.Render("Analyst narrative:"))
		fmt.Println(cli.SubtleStyle.Render(expl.Narrative))
	}

	return nil
}
