package replay

// FrameInput records the pointer state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	X int  `json:"x"`           // Pointer X
	Y int  `json:"y"`           // Pointer Y
	P bool `json:"p,omitempty"` // Pressed this frame
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Version is written into every new recording
const Version = "1.0"
