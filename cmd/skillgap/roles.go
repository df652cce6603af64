package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/skillgap/internal/observability"
	"github.com/jonathan/skillgap/internal/types"
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles [name]",
	Short: "List catalog roles or show one role's requirements",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoles,
}

var rolesJSON bool

func init() {
	rolesCmd.Flags().BoolVar(&rolesJSON, "json", false, "Print as JSON")
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	analyzer, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	cat := analyzer.Catalog()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		role, ok := cat.Get(args[0])
		if !ok {
			return fmt.Errorf("role not found: %s", args[0])
		}
		if rolesJSON {
			return writeJSON(cmd, role)
		}
		_, _ = fmt.Fprintf(out, "%s\n\nCritical:  %s\nImportant: %s\n",
			role.RoleName, strings.Join(role.CriticalSkills, ", "), strings.Join(role.ImportantSkills, ", "))
		return nil
	}

	roles := make([]types.RoleRequirement, 0, len(cat.Roles()))
	for _, name := range cat.Roles() {
		if role, ok := cat.Get(name); ok {
			roles = append(roles, role)
		}
	}

	if rolesJSON {
		return writeJSON(cmd, roles)
	}
	observability.NewPrinter(out).PrintRoles(roles, cat.DefaultRole())
	return nil
}

// writeJSON prints v as indented JSON on the command's stdout
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
