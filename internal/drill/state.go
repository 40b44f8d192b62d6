package drill

// State is the position of a session in the drill state machine
type State int

const (
	NotStarted State = iota
	AwaitingSelection
	RoundInProgress
	RoundSucceeded
	RoundFailed
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case AwaitingSelection:
		return "awaiting selection"
	case RoundInProgress:
		return "round in progress"
	case RoundSucceeded:
		return "round succeeded"
	case RoundFailed:
		return "round failed"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Outcome is the result of the last spelling attempt
type Outcome int

const (
	Pending Outcome = iota
	Correct
	Incorrect
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Messages shown to the user
const (
	CorrectMessage    = "Correct spelling!"
	IncorrectMessage  = "Incorrect spelling. Please try again."
	CompletionMessage = "Congratulations! You have spelled all words correctly."
	NoWordListMessage = "No word list provided. Please submit a word list."
	EmptyListMessage  = "Please enter a list of words."
)
