package catalog

import (
	"fmt"
	"strings"
)

// Markdown renders one course level as a Markdown document.
func (c *Catalog) Markdown(name string, level Level) (string, error) {
	d, err := c.Details(name, level)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "_%s level_\n\n", level)

	b.WriteString("## Course Duration\n\n")
	for _, line := range d.DurationLines() {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	b.WriteString("\n## Prerequisites\n\n")
	for _, p := range d.Prerequisites {
		fmt.Fprintf(&b, "- %s\n", p)
	}

	b.WriteString("\n## Course Highlights\n\n")
	for i, h := range d.Highlights {
		fmt.Fprintf(&b, "%d. %s\n", i+1, h)
	}

	b.WriteString("\n## Learning Outcomes\n\n")
	for i, o := range d.Outcomes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, o)
	}
	return b.String(), nil
}
