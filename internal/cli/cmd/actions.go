package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/berrythewa/copycopy/internal/actions"
	"github.com/berrythewa/copycopy/internal/storage"
	"github.com/berrythewa/copycopy/internal/types"
	"github.com/berrythewa/copycopy/pkg/format"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newActionsCmd creates the actions command
func newActionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Manage custom actions",
		Long: `Manage the custom actions offered next to the built-in suggestions.
Actions are addressed by their position in "actions list" or by ID.`,
	}

	cmd.AddCommand(newActionsListCmd())
	cmd.AddCommand(newActionsAddCmd())
	cmd.AddCommand(newActionsRemoveCmd())
	cmd.AddCommand(newActionsEnableCmd(true))
	cmd.AddCommand(newActionsEnableCmd(false))
	cmd.AddCommand(newActionsMoveCmd())
	cmd.AddCommand(newActionsResetCmd())
	return cmd
}

// withStore opens the action store for the duration of fn
func withStore(fn func(store *storage.ActionStore) error) error {
	store, err := openStore(cfg, GetZapLogger())
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// resolveAction accepts a 1-based position or an action ID
func resolveAction(store *storage.ActionStore, ref string) (actions.CustomAction, int, error) {
	list, err := store.Load()
	if err != nil {
		return actions.CustomAction{}, 0, err
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(list) {
			return actions.CustomAction{}, 0, fmt.Errorf("%w: %d", storage.ErrInvalidPosition, n)
		}
		return list[n-1], n - 1, nil
	}

	id, err := uuid.Parse(ref)
	if err != nil {
		return actions.CustomAction{}, 0, fmt.Errorf("invalid action reference %q", ref)
	}
	for i, a := range list {
		if a.ID == id {
			return a, i, nil
		}
	}
	return actions.CustomAction{}, 0, fmt.Errorf("%w: %s", storage.ErrActionNotFound, id)
}

func newActionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom actions in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *storage.ActionStore) error {
				list, err := store.Load()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if useJSON {
					return writeJSON(out, list)
				}

				width := 0
				for _, a := range list {
					if len(a.Name) > width {
						width = len(a.Name)
					}
				}
				for i, a := range list {
					mark := "✓"
					if !a.Enabled {
						mark = " "
					}
					var filters []string
					if a.ContentFilter != actions.ContentAny {
						filters = append(filters, "content="+string(a.ContentFilter))
					}
					if a.SourceFilter != actions.SourceAny {
						filters = append(filters, "source="+string(a.SourceFilter))
					}
					if a.EntityFilter != actions.EntityAny {
						filters = append(filters, "entity="+string(a.EntityFilter))
					}
					builtIn := ""
					if a.BuiltIn {
						builtIn = " (built-in)"
					}
					fmt.Fprintf(out, "%2d. [%s] %s  %-18s %s%s\n",
						i+1, mark, format.PadRight(a.Name, width), a.ActionType.DisplayName(),
						strings.Join(filters, " "), builtIn)
				}
				return nil
			})
		},
	}
}

func newActionsAddCmd() *cobra.Command {
	var (
		actionType string
		template   string
		content    string
		sourceCtx  string
		entity     string
		image      string
		disabled   bool
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a custom action",
		Long: `Add a custom action. Templates may use {text}, {text:encoded},
{text:trimmed}, {linecount} and {charcount}.

Example:
  copycopy actions add "Search Docs" --type openURL \
    --template "https://pkg.go.dev/search?q={text:encoded}" --content text`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := actions.New(args[0], actions.ActionType(actionType), template)
			a.Enabled = !disabled
			if image != "" {
				a.SystemImage = image
			}

			if !slices.Contains(actions.ContentTypeFilters, actions.ContentTypeFilter(content)) {
				return fmt.Errorf("unknown content filter %q", content)
			}
			a.ContentFilter = actions.ContentTypeFilter(content)

			if !slices.Contains(actions.SourceContextFilters, actions.SourceContextFilter(sourceCtx)) {
				return fmt.Errorf("unknown source filter %q", sourceCtx)
			}
			a.SourceFilter = actions.SourceContextFilter(sourceCtx)

			if entity != string(actions.EntityAny) {
				e, err := types.ParseEntity(entity)
				if err != nil {
					return err
				}
				a.EntityFilter = actions.EntityFilterFor(e)
			}

			return withStore(func(store *storage.ActionStore) error {
				if err := store.Add(a); err != nil {
					return err
				}
				if useJSON {
					return writeJSON(cmd.OutOrStdout(), a)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Added %q (%s)\n", a.Name, a.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&actionType, "type", string(actions.OpenURL), "action type: "+joinValues(actions.ActionTypes))
	cmd.Flags().StringVar(&template, "template", "", "template expanded with the copied text")
	cmd.Flags().StringVar(&content, "content", string(actions.ContentAny), "content filter: "+joinValues(actions.ContentTypeFilters))
	cmd.Flags().StringVar(&sourceCtx, "source", string(actions.SourceAny), "source filter: "+joinValues(actions.SourceContextFilters))
	cmd.Flags().StringVar(&entity, "entity", string(actions.EntityAny), "entity filter: any or an entity tag")
	cmd.Flags().StringVar(&image, "image", "", "SF Symbol name (defaults to the type's symbol)")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "add the action disabled")
	return cmd
}

func newActionsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Remove a custom action (built-ins can only be disabled)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *storage.ActionStore) error {
				a, _, err := resolveAction(store, args[0])
				if err != nil {
					return err
				}
				if err := store.Remove(a.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed %q\n", a.Name)
				return nil
			})
		},
	}
}

func newActionsEnableCmd(enable bool) *cobra.Command {
	use, verb := "enable REF", "Enabled"
	if !enable {
		use, verb = "disable REF", "Disabled"
	}
	return &cobra.Command{
		Use:   use,
		Short: verb + " an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *storage.ActionStore) error {
				a, _, err := resolveAction(store, args[0])
				if err != nil {
					return err
				}
				if err := store.SetEnabled(a.ID, enable); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s %q\n", verb, a.Name)
				return nil
			})
		},
	}
}

func newActionsMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move REF POSITION",
		Short: "Move an action to a 1-based position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}
			return withStore(func(store *storage.ActionStore) error {
				a, from, err := resolveAction(store, args[0])
				if err != nil {
					return err
				}
				if err := store.Move(from, to-1); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Moved %q to position %d\n", a.Name, to)
				return nil
			})
		},
	}
}

func newActionsResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default actions, dropping custom ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset removes every custom action; rerun with --force to confirm")
			}
			return withStore(func(store *storage.ActionStore) error {
				if err := store.Reset(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "✓ Actions reset to defaults")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "confirm the reset")
	return cmd
}

func joinValues[T ~string](list []T) string {
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
