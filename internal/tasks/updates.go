package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	PrepareStaging Phase = iota
	CopyFiles
	ConvertFiles
	Finish
)

func (p Phase) String() string {
	switch p {
	case PrepareStaging:
		return "prepare_staging"
	case CopyFiles:
		return "copy_files"
	case ConvertFiles:
		return "convert_files"
	case Finish:
		return "finish"
	default:
		return ""
	}
}

func copyUpdate(step, total int, source string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CopyFiles,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Copying %s", source),
	}
}

func convertUpdate(step, total int, source string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ConvertFiles,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Converting %s", source),
	}
}

func finishUpdate(copied, converted, failed int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Finish,
		Message: fmt.Sprintf("Done: %d copied, %d converted, %d failed", copied, converted, failed),
	}
}
