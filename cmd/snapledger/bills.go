package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snapledger/snapledger/internal/cli"
)

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Inspect saved bills",
	}
	cmd.AddCommand(billsListCmd())
	return cmd
}

func billsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved bills, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			limit, _ := cmd.Flags().GetInt("limit")
			asJSON, _ := cmd.Flags().GetBool("json")

			db, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(db)

			bills, err := db.ListBills(ctx, limit)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(os.Stdout, bills)
			}

			if len(bills) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no bills saved yet"))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Bills"))
			for _, bill := range bills {
				category := bill.Category
				if category == "" {
					category = cli.Unclassified
				}
				fmt.Printf("%4d  %s  %10.2f  %-20s %s\n",
					bill.ID, bill.Date, bill.Amount, bill.Merchant, cli.SubtleStyle.Render(category))
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 50, "Maximum number of bills to show (0 = all)")
	cmd.Flags().Bool("json", false, "Emit machine-readable JSON")
	return cmd
}
