package models

// Task describes one command submitted on the control channel. Every field is
// optional on the wire; missing fields decode to their zero values, so an empty
// JSON object is a valid (if unexecutable) task.
type Task struct {
	ID      string   `json:"id"`
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// Argv returns the invocation vector for the task: the command followed by its
// arguments. An empty command still yields a one-element vector so launch
// failures surface through the normal process-spawn path.
func (t *Task) Argv() []string {
	argv := make([]string, 0, len(t.Args)+1)
	argv = append(argv, t.Command)
	argv = append(argv, t.Args...)
	return argv
}
