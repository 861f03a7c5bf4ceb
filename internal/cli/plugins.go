package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vk/sentproc/internal/app"
)

var (
	nameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	descStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func newPluginsCommand(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the registered plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cmd.Context(), global.configPath, global.overrides())
			if err != nil {
				return usageError(err)
			}

			a, err := app.New(cmd.Context(), cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderPlugins(a.Plugins()))
			return nil
		},
	}
}

func renderPlugins(infos []app.PluginInfo) string {
	width := 0
	for _, info := range infos {
		width = max(width, len(info.Name))
	}

	var sb strings.Builder
	for _, info := range infos {
		name := nameStyle.Width(width + 2).Render(info.Name)
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, name, descStyle.Render(info.Description)))
		sb.WriteByte('\n')
	}
	return sb.String()
}
