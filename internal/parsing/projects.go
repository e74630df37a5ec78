package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-ats/internal/textnorm"
	"github.com/jonathan/resume-ats/internal/types"
)

// parenRe captures a parenthesized list without nesting.
var parenRe = regexp.MustCompile(`\(([^()]*)\)`)

// techLabels open a line listing the technologies of a project.
var techLabels = []string{"tech stack:", "technologies:", "tech:", "stack:", "tools:", "built with:", "built with"}

// linkLabels are dropped when a line holds nothing but a labelled URL.
var linkLabels = map[string]bool{
	"link": true, "links": true, "url": true, "demo": true, "live": true,
	"github": true, "repo": true, "source": true, "code": true, "website": true,
}

// parseProjects splits project lines into entries at paragraph breaks, and at
// a heading-shaped line that follows bullet lines.
func parseProjects(lines []textnorm.Line) []types.Project {
	var projects []types.Project
	var current []string
	lastBullet := false

	flush := func() {
		if len(current) > 0 {
			projects = append(projects, buildProject(current))
		}
		current = nil
		lastBullet = false
	}

	for _, line := range lines {
		bullet := isBullet(line.Text)
		switch {
		case line.BreakBefore:
			flush()
		case lastBullet && !bullet && isShortHeading(line.Text) && !isTechLine(line.Text) && findURL(line.Text) == "":
			flush()
		}
		current = append(current, line.Text)
		lastBullet = bullet
	}
	flush()

	return projects
}

func buildProject(lines []string) types.Project {
	project := types.Project{TechStack: []string{}}

	title := stripBullet(lines[0])
	if u := findURL(title); u != "" {
		project.Link = u
		title = cleanRemainder(strings.Replace(title, u, "", 1))
	}
	if m := parenRe.FindStringSubmatchIndex(title); m != nil {
		inner := title[m[2]:m[3]]
		if textnorm.HasLetter(inner) {
			project.TechStack = appendUnique(project.TechStack, splitList(inner)...)
			title = cleanRemainder(title[:m[0]] + " " + title[m[1]:])
		}
	}
	if name, stack, ok := strings.Cut(title, "|"); ok {
		project.TechStack = appendUnique(project.TechStack, splitList(stack)...)
		title = strings.TrimSpace(name)
	}
	project.Title = title

	var desc []string
	for _, line := range lines[1:] {
		if stack, ok := techLine(line); ok {
			project.TechStack = appendUnique(project.TechStack, splitList(stack)...)
			continue
		}
		if u := findURL(line); u != "" {
			if project.Link == "" {
				project.Link = u
			}
			rest := cleanRemainder(strings.Replace(line, u, "", 1))
			if rest == "" || linkLabels[strings.ToLower(stripBullet(rest))] {
				continue
			}
		}
		desc = append(desc, line)
	}
	project.Description = strings.Join(desc, "\n")

	return project
}

func isTechLine(line string) bool {
	_, ok := techLine(line)
	return ok
}

// techLine returns the list part of a "Tech: Go, React" line.
func techLine(line string) (string, bool) {
	text := stripBullet(line)
	for _, label := range techLabels {
		if hasPrefixFold(text, label) {
			return strings.TrimSpace(text[len(label):]), true
		}
	}
	return "", false
}

// appendUnique appends items not already present, compared case-insensitively.
func appendUnique(list []string, items ...string) []string {
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		seen[strings.ToLower(s)] = true
	}
	for _, item := range items {
		key := strings.ToLower(item)
		if item == "" || seen[key] {
			continue
		}
		seen[key] = true
		list = append(list, item)
	}
	return list
}
