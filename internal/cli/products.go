package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"estoque/internal/model"
	"estoque/internal/ui"

	"github.com/spf13/cobra"
)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := a.store.Load(ctx); err != nil {
				return err
			}

			state := a.store.State()
			if a.json {
				return printJSON(cmd.OutOrStdout(), state.Products)
			}
			return ui.Render(cmd.OutOrStdout(), state)
		},
	}
}

func (a *app) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			product, err := a.client.Get(ctx, id)
			if err != nil {
				return err
			}

			if a.json {
				return printJSON(cmd.OutOrStdout(), product)
			}
			return ui.RenderTable(cmd.OutOrStdout(), []model.Product{*product})
		},
	}
}

// draftFlags holds the product field flags shared by add and edit.
type draftFlags struct {
	name       string
	kind       string
	quantity   int
	outOfStock bool
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().StringVar(&f.kind, "kind", string(model.KindFresh), "kind: congelada or fresca")
	cmd.Flags().IntVar(&f.quantity, "quantity", 0, "units in stock")
	cmd.Flags().BoolVar(&f.outOfStock, "out-of-stock", false, "mark the product as out of stock")
}

// apply copies the flags the user set onto d.
func (f *draftFlags) apply(cmd *cobra.Command, d ui.Draft) ui.Draft {
	if cmd.Flags().Changed("name") {
		d.Name = f.name
	}
	if cmd.Flags().Changed("kind") {
		d.Kind = model.Kind(f.kind)
	}
	if cmd.Flags().Changed("quantity") {
		d.Quantity = f.quantity
	}
	if cmd.Flags().Changed("out-of-stock") {
		d.OutOfStock = f.outOfStock
	}
	return d
}

func (a *app) addCommand() *cobra.Command {
	flags := &draftFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			a.store.OpenCreate()
			a.store.SetDraft(flags.apply(cmd, a.store.State().Form.Draft))

			return a.submit(ctx, cmd)
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (a *app) editCommand() *cobra.Command {
	flags := &draftFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a product; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := a.store.Load(ctx); err != nil {
				return err
			}
			if err := a.store.OpenEdit(id); err != nil {
				return err
			}
			a.store.SetDraft(flags.apply(cmd, a.store.State().Form.Draft))

			return a.submit(ctx, cmd)
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *app) submit(ctx context.Context, cmd *cobra.Command) error {
	// saved is non-nil with a non-nil err when only the reload failed.
	saved, err := a.store.Submit(ctx)
	if saved == nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.json {
		if perr := printJSON(out, saved); perr != nil {
			return perr
		}
		return err
	}

	fmt.Fprintf(out, "Produto salvo (ID %d).\n", saved.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	return ui.Render(out, a.store.State())
}

func (a *app) deleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !yes {
				if !confirm(cmd, fmt.Sprintf("Excluir o produto %d? [s/N]: ", id)) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelado.")
					return nil
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			deleted, err := a.store.Delete(ctx, id)
			if deleted == nil {
				return err
			}

			if a.json {
				if perr := printJSON(cmd.OutOrStdout(), deleted); perr != nil {
					return perr
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Produto %q excluído.\n", deleted.Name)
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func (a *app) healthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			resp, err := a.client.Health(ctx)
			if err != nil {
				return err
			}

			if a.json {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", a.client.BaseURL(), resp.Status)
			return nil
		},
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the estoque version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "estoque", Version)
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}

// confirm prints prompt and reports whether the answer is affirmative.
// EOF counts as no.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "sim", "y", "yes":
		return true
	default:
		return false
	}
}
