// Package quiz contains the skill-module catalog and the per-module quiz
// engine.
package quiz

// Task is a single multiple-choice question.
type Task struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// Module is a named, ordered set of tasks. Completing every task once
// credits the player and marks the module done.
type Module struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Tasks       []Task `json:"tasks"`
}

// placeholderTask is served in place of a module's tasks when it has none.
var placeholderTask = Task{
	Question:     "Loading...",
	Options:      []string{"Loading...", "Loading...", "Loading...", "Loading..."},
	CorrectIndex: 0,
	Explanation:  "Loading...",
}

// Catalog is an immutable, ordered collection of modules.
type Catalog struct {
	modules []Module
	byID    map[string]int
}

// NewCatalog validates modules and builds a catalog.
func NewCatalog(modules []Module) (*Catalog, error) {
	if err := validateModules(modules); err != nil {
		return nil, err
	}
	c := &Catalog{
		modules: make([]Module, len(modules)),
		byID:    make(map[string]int, len(modules)),
	}
	copy(c.modules, modules)
	for i, m := range modules {
		c.byID[m.ID] = i
	}
	return c, nil
}

// All returns the modules in display order.
func (c *Catalog) All() []Module {
	out := make([]Module, len(c.modules))
	copy(out, c.modules)
	return out
}

// ByID returns the module with the given id.
func (c *Catalog) ByID(id string) (Module, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Module{}, false
	}
	return c.modules[i], true
}

// Len returns the number of modules.
func (c *Catalog) Len() int {
	return len(c.modules)
}

// CompletedCount returns how many catalog modules done reports as completed.
func (c *Catalog) CompletedCount(done func(id string) bool) int {
	n := 0
	for _, m := range c.modules {
		if done(m.ID) {
			n++
		}
	}
	return n
}
