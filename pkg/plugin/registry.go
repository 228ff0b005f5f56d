package plugin

// Registry holds a plugin's components in registration order. Order matters
// for commands: the host consults patterns first-registered-wins.
type Registry struct {
	actions  []Action
	commands []Command

	actionsByName  map[string]Action
	commandsByName map[string]Command
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{
		actionsByName:  make(map[string]Action),
		commandsByName: make(map[string]Command),
	}
}

// RegisterAction adds an action to the registry. Registering the same name
// twice replaces the handler but keeps the original position.
func (r *Registry) RegisterAction(a Action) {
	name := a.Info().Name
	if _, exists := r.actionsByName[name]; !exists {
		r.actions = append(r.actions, a)
	} else {
		for i, existing := range r.actions {
			if existing.Info().Name == name {
				r.actions[i] = a
				break
			}
		}
	}
	r.actionsByName[name] = a
}

// RegisterCommand adds a command to the registry, preserving registration
// order for dispatch tie-breaking.
func (r *Registry) RegisterCommand(c Command) {
	name := c.Info().Name
	if _, exists := r.commandsByName[name]; !exists {
		r.commands = append(r.commands, c)
	} else {
		for i, existing := range r.commands {
			if existing.Info().Name == name {
				r.commands[i] = c
				break
			}
		}
	}
	r.commandsByName[name] = c
}

// GetAction retrieves an action by name.
func (r *Registry) GetAction(name string) (Action, bool) {
	a, ok := r.actionsByName[name]
	return a, ok
}

// GetCommand retrieves a command by name.
func (r *Registry) GetCommand(name string) (Command, bool) {
	c, ok := r.commandsByName[name]
	return c, ok
}

// Actions returns all registered actions in registration order.
func (r *Registry) Actions() []Action {
	out := make([]Action, len(r.actions))
	copy(out, r.actions)
	return out
}

// Commands returns all registered commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// ComponentSet returns the declarative registration records for everything
// in the registry.
func (r *Registry) ComponentSet() ComponentSet {
	set := ComponentSet{
		Actions:  make([]ActionInfo, 0, len(r.actions)),
		Commands: make([]CommandInfo, 0, len(r.commands)),
	}
	for _, a := range r.actions {
		set.Actions = append(set.Actions, a.Info())
	}
	for _, c := range r.commands {
		set.Commands = append(set.Commands, c.Info())
	}
	return set
}
