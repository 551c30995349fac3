package world

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hackshell/hackshell/internal/cli/output"
	"github.com/hackshell/hackshell/pkg/config"
	"github.com/hackshell/hackshell/pkg/world"
)

var (
	listWorld  string
	listOutput string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the servers of a world file",
	Long: `List every server of a world file with its users.

The file is taken from --world, or from world.file in the configuration.

Examples:
  hackshell world list --world world.yaml
  hackshell world list -o json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listWorld, "world", "", "World file (default: world.file from the configuration)")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format (table|json|yaml)")
}

// serverRow is the listing of one server.
type serverRow struct {
	IP            string   `json:"ip" yaml:"ip"`
	Name          string   `json:"name" yaml:"name"`
	SecurityLevel int      `json:"security_level" yaml:"security_level"`
	Users         []string `json:"users" yaml:"users"`
	Entries       int      `json:"entries" yaml:"entries"`
	Home          bool     `json:"home,omitempty" yaml:"home,omitempty"`
}

// serverList renders as a table and marshals as a plain list.
type serverList []serverRow

// Headers implements output.TableRenderer.
func (l serverList) Headers() []string {
	return []string{"IP", "Name", "Security", "Users", "Entries"}
}

// Rows implements output.TableRenderer.
func (l serverList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		name := s.Name
		if s.Home {
			name += " (home)"
		}
		rows = append(rows, []string{
			s.IP,
			name,
			strconv.Itoa(s.SecurityLevel),
			strings.Join(s.Users, ", "),
			strconv.Itoa(s.Entries),
		})
	}
	return rows
}

// listServers summarizes every server of w, sorted by IP.
func listServers(w *world.World) serverList {
	servers := w.Registry.List()
	out := make(serverList, 0, len(servers))
	for _, s := range servers {
		users := make([]string, 0, len(s.Users))
		for _, u := range s.Users {
			users = append(users, u.Username)
		}
		out = append(out, serverRow{
			IP:            s.IP,
			Name:          s.Name,
			SecurityLevel: s.SecurityLevel,
			Users:         users,
			Entries:       s.FileSystem.Count(),
			Home:          s == w.Home,
		})
	}
	return out
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(listOutput)
	if err != nil {
		return err
	}

	path := listWorld
	if path == "" {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		path = cfg.World.File
	}
	if path == "" {
		return fmt.Errorf("no world file given: use --world or set world.file in the configuration")
	}

	w, err := world.Load(path)
	if err != nil {
		return err
	}

	return output.NewPrinter(cmd.OutOrStdout(), format, false).Print(listServers(w))
}
