package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching

type SwitchToNewTaskMsg struct{}

type SwitchToTriageMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToTaskListMsg struct{}

// OpenEditorMsg asks the app to suspend the TUI and open a file
type OpenEditorMsg struct {
	Path string // Absolute path
}

// TaskCreatedMsg reports a successful entity creation
type TaskCreatedMsg struct {
	Path string
}

// CreateErrMsg reports a failed entity creation
type CreateErrMsg struct {
	Err error
}

type errMsg struct {
	err error
}

type statusMsg struct {
	message string
}
