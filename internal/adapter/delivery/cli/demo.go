package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vaibhavmishra08/urlshortner/internal/adapter/repository/memory"
	"github.com/Vaibhavmishra08/urlshortner/internal/entity"
	"github.com/Vaibhavmishra08/urlshortner/internal/usecase"
)

// maxDestinationWidth bounds the destination column in list output.
const maxDestinationWidth = 48

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an interactive single-session registry",
	Long: `Run an interactive registry session on the terminal.

The session owns a fresh registry; quitting discards every alias. Commands:
  shorten <url>   register a destination and print its alias
  open <alias>    resolve an alias and print its destination
  list            print registered links, most recent first
  stats           print aggregate counters
  help            print this command list
  quit            end the session`,
	RunE: runDemoCmd,
}

func runDemoCmd(cmd *cobra.Command, args []string) error {
	registry := memory.NewRegistry()
	uc := usecase.New(registry)

	session := &demoSession{
		uc:  uc,
		out: cmd.OutOrStdout(),
	}

	return session.run(cmd.InOrStdin())
}

type demoSession struct {
	uc  *usecase.LinkUseCase
	out io.Writer
}

func (s *demoSession) run(in io.Reader) error {
	fmt.Fprintln(s.out, "urlshortner demo session. Type 'help' for commands, 'quit' to end.")

	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(s.out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		command, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch command {
		case "shorten":
			s.shorten(arg)
		case "open":
			s.open(arg)
		case "list":
			s.list()
		case "stats":
			s.stats()
		case "help":
			s.help()
		case "quit", "exit":
			fmt.Fprintln(s.out, "Session ended. All aliases discarded.")
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for commands.\n", command)
		}
	}
}

func (s *demoSession) shorten(raw string) {
	link, err := s.uc.Shorten(raw)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmptyDestination):
			fmt.Fprintln(s.out, "Nothing to shorten: the destination is empty.")
		case errors.Is(err, entity.ErrInvalidDestination):
			fmt.Fprintln(s.out, "That does not look like a valid url. Try again.")
		default:
			fmt.Fprintf(s.out, "Failed to shorten: %v\n", err)
		}
		return
	}

	fmt.Fprintf(s.out, "%s -> %s\n", link.Alias, link.Destination)
}

func (s *demoSession) open(alias string) {
	link, err := s.uc.Resolve(alias)
	if err != nil {
		if errors.Is(err, entity.ErrAliasNotFound) {
			fmt.Fprintf(s.out, "Alias %q not found.\n", alias)
		} else {
			fmt.Fprintf(s.out, "Failed to open: %v\n", err)
		}
		return
	}

	fmt.Fprintf(s.out, "%s (visits: %d)\n", link.Destination, link.VisitCount)
}

func (s *demoSession) list() {
	links := s.uc.Links()
	if len(links) == 0 {
		fmt.Fprintln(s.out, "No aliases registered yet.")
		return
	}

	sort.Slice(links, func(i, j int) bool {
		return links[i].SequenceID > links[j].SequenceID
	})

	fmt.Fprintf(s.out, "%-8s %-7s %s\n", "ALIAS", "VISITS", "DESTINATION")
	for _, link := range links {
		fmt.Fprintf(s.out, "%-8s %-7d %s\n", link.Alias, link.VisitCount, truncate(link.Destination, maxDestinationWidth))
	}
}

func (s *demoSession) stats() {
	stats := s.uc.Stats()
	fmt.Fprintf(s.out, "aliases: %d, visits: %d\n", stats.TotalAliases, stats.TotalVisits)
}

func (s *demoSession) help() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  shorten <url>   register a destination and print its alias")
	fmt.Fprintln(s.out, "  open <alias>    resolve an alias and print its destination")
	fmt.Fprintln(s.out, "  list            print registered links, most recent first")
	fmt.Fprintln(s.out, "  stats           print aggregate counters")
	fmt.Fprintln(s.out, "  help            print this command list")
	fmt.Fprintln(s.out, "  quit            end the session")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
