package commands

import (
	"context"
	"sort"
	"strings"

	"github.com/pixil98/go-crawler/internal/display"
)

var helpTemplate = mustParse("help", `Available commands:
{{- range . }}
  {{ .Label }}:
{{- range .Commands }}
    {{ .Name | printf "%-6s" }} {{ .Description }}
{{- end }}
{{- end }}`)

type helpCommand struct {
	Name        string
	Description string
}

type helpCategory struct {
	Label    string
	Commands []helpCommand
}

// HelpHandlerFactory creates handlers that list the commands by category.
type HelpHandlerFactory struct {
	commands map[string]*Command
	pub      Publisher
}

// NewHelpHandlerFactory creates a new HelpHandlerFactory.
func NewHelpHandlerFactory(commands map[string]*Command, pub Publisher) *HelpHandlerFactory {
	return &HelpHandlerFactory{commands: commands, pub: pub}
}

func (f *HelpHandlerFactory) ValidateConfig(config map[string]string) error {
	return nil
}

func (f *HelpHandlerFactory) Create() (CommandFunc, error) {
	out, err := executeTemplate(helpTemplate, f.categories())
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, cmdCtx *CommandContext) error {
		if f.pub != nil {
			return f.pub.Publish([]byte(out))
		}
		return nil
	}, nil
}

func (f *HelpHandlerFactory) categories() []helpCategory {
	groups := make(map[string][]helpCommand)
	for name, cmd := range f.commands {
		category := cmd.Category
		if category == "" {
			category = "other"
		}
		groups[category] = append(groups[category], helpCommand{Name: name, Description: cmd.Description})
	}

	names := make([]string, 0, len(groups))
	for cat := range groups {
		names = append(names, cat)
	}
	sort.Strings(names)

	categories := make([]helpCategory, 0, len(names))
	for _, cat := range names {
		cmds := groups[cat]
		sort.Slice(cmds, func(i, j int) bool {
			return strings.Compare(cmds[i].Name, cmds[j].Name) < 0
		})
		categories = append(categories, helpCategory{Label: display.Title(cat), Commands: cmds})
	}
	return categories
}
