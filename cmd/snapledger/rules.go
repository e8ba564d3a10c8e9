package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/snapledger/snapledger/internal/classify"
	"github.com/snapledger/snapledger/internal/cli"
	"github.com/snapledger/snapledger/internal/model"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage category rules",
		Long: `Manage the keyword-to-category rule table used by the classifier.

Rules are matched priority-high-to-low; weak rules (generic platform
keywords) lose ties against specific ones.`,
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesAddCmd())
	cmd.AddCommand(rulesRemoveCmd())
	cmd.AddCommand(rulesSeedCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List category rules in evaluation order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			all, _ := cmd.Flags().GetBool("all")

			db, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(db)

			rules, err := db.GetCategoryRules(ctx, !all)
			if err != nil {
				return err
			}
			if len(rules) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no rules defined; run 'snapledger rules seed'"))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Category Rules"))
			for _, rule := range rules {
				line := fmt.Sprintf("%4d  p%-3d %-20s → %s", rule.ID, rule.Priority, rule.Keyword, rule.Category)
				var tags string
				if rule.IsRegex {
					tags += " [regex]"
				}
				if rule.IsWeak {
					tags += " [weak]"
				}
				if !rule.Enabled {
					tags += " [disabled]"
				}
				fmt.Println(line + cli.SubtleStyle.Render(tags))
			}
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include disabled rules")
	return cmd
}

func rulesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add KEYWORD CATEGORY",
		Short: "Add a category rule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			priority, _ := cmd.Flags().GetInt("priority")
			isRegex, _ := cmd.Flags().GetBool("regex")
			isWeak, _ := cmd.Flags().GetBool("weak")

			db, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(db)

			rule, err := db.CreateCategoryRule(ctx, model.CategoryRule{
				Keyword:  args[0],
				Category: args[1],
				Priority: priority,
				IsRegex:  isRegex,
				IsWeak:   isWeak,
				Enabled:  true,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("✓ rule %d: %q → %s", rule.ID, rule.Keyword, rule.Category)))
			return nil
		},
	}

	cmd.Flags().IntP("priority", "p", 1, "Rule priority (higher wins)")
	cmd.Flags().Bool("regex", false, "Treat the keyword as a regular expression")
	cmd.Flags().Bool("weak", false, "Mark the keyword as weak (loses priority ties)")
	return cmd
}

func rulesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a category rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid rule ID %q: %w", args[0], err)
			}

			db, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(db)

			if err := db.DeleteCategoryRule(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ removed rule %d", id)))
			return nil
		},
	}
}

func rulesSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the default rule table",
		Long:  `Install the built-in keyword rules. A non-empty rule table is left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(db)

			seeded, err := db.SeedCategoryRules(ctx, classify.DefaultRules())
			if err != nil {
				return err
			}

			if seeded == 0 {
				fmt.Println(cli.SubtleStyle.Render("rule table already populated; nothing seeded"))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ seeded %d default rules", seeded)))
			return nil
		},
	}
}
