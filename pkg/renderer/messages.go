package renderer

import "github.com/nkall/duskmarch/pkg/scene"

// RenderInMsg is an inbound control message for the interactive scheduler.
type RenderInMsg struct {
	Kind   RenderInKind
	Width  int
	Height int
	Scene  *scene.Scene
}

// RenderInKind tags which field of RenderInMsg is populated.
type RenderInKind int

const (
	MsgResize RenderInKind = iota
	MsgSceneChange
	MsgRestart
	MsgExit
)

// ResizeMsg builds a Resize(w, h) inbound message.
func ResizeMsg(w, h int) RenderInMsg {
	return RenderInMsg{Kind: MsgResize, Width: w, Height: h}
}

// SceneChangeMsg builds a SceneChange(scene) inbound message.
func SceneChangeMsg(s *scene.Scene) RenderInMsg {
	return RenderInMsg{Kind: MsgSceneChange, Scene: s}
}

// RestartMsg builds a Restart inbound message.
func RestartMsg() RenderInMsg {
	return RenderInMsg{Kind: MsgRestart}
}

// ExitMsg builds an Exit inbound message.
func ExitMsg() RenderInMsg {
	return RenderInMsg{Kind: MsgExit}
}

// RenderOutMsg is an outbound notification that the front buffer was
// published and is valid at Scale.
type RenderOutMsg struct {
	Scale Scaling
}
