package cli

import (
	"fmt"

	"github.com/tasbihapp/tasbih/internal/models"
)

type TemplateCmd struct {
	List TemplateListCmd `cmd:"" help:"List available dhikr templates."`
	Add  TemplateAddCmd  `cmd:"" help:"Create counters from a template."`
}

type TemplateListCmd struct{}

func (c *TemplateListCmd) Run(ctx *Context) error {
	for _, key := range models.TemplateKeys() {
		template := models.DhikrTemplates[key]
		fmt.Printf("%-12s %s: %s\n", key, template.Name, template.Description)
		for _, entry := range template.Tasbihs {
			fmt.Printf("             %s ×%d\n", entry.Name, entry.TargetCount)
		}
	}
	return nil
}

type TemplateAddCmd struct {
	Key string `arg:"" help:"Template key (see 'tasbih template list')."`
}

func (c *TemplateAddCmd) Run(ctx *Context) error {
	created, err := ctx.Counters.CreateFromTemplate(c.Key)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		fmt.Printf("Unknown template %q. See 'tasbih template list'.\n", c.Key)
		return nil
	}

	fmt.Printf("Created %d counters from %s:\n", len(created), c.Key)
	for _, t := range created {
		fmt.Printf("  %s ×%d\n", t.Name, t.TargetCount)
	}
	fmt.Printf("Active counter: %s\n", created[0].Name)
	return nil
}
