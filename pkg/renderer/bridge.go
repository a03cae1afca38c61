package renderer

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/nkall/duskmarch/pkg/framebuffer"
)

// DisplayBridge stands in for the out-of-scope GPU display collaborator: it
// reads an InteractiveRenderer's Out channel and front buffer and streams
// them to any number of connected browser viewers over a websocket, and
// forwards the viewer's resize events back in as RenderInMsg values.
type DisplayBridge struct {
	chain *framebuffer.SwapChain
	in    chan<- RenderInMsg

	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

// NewDisplayBridge wires a bridge to the renderer's swap chain and inbound
// channel. in is typically the same channel passed as
// InteractiveRenderer.In's send side.
func NewDisplayBridge(chain *framebuffer.SwapChain, in chan<- RenderInMsg) *DisplayBridge {
	return &DisplayBridge{
		chain:   chain,
		in:      in,
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// frameMessage is the wire format pushed to viewers on every published
// update: the scale the front buffer is valid at, its dimensions, and the
// raw RGBA32F pixel data as a flat float slice (zero-copy-equivalent on the
// Go side: framebuffer.Pixel's layout is exactly 4 float32s).
type frameMessage struct {
	Scale  int       `json:"scale"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Pixels []float32 `json:"pixels"`
}

// Broadcast pushes the current front buffer to every connected client at
// the given scale. Called by the code driving InteractiveRenderer.Out each
// time an Update message arrives.
func (b *DisplayBridge) Broadcast(scale Scaling) {
	var msg frameMessage
	b.chain.Front(func(fb *framebuffer.FrameBuffer) {
		msg = frameMessage{Scale: scale.Scale(), Width: fb.Width, Height: fb.Height}
		pixels := fb.AsSlice()
		msg.Pixels = make([]float32, 0, len(pixels)*4)
		for _, p := range pixels {
			msg.Pixels = append(msg.Pixels, p.R, p.G, p.B, p.A)
		}
	})

	encoded, err := json.Marshal(msg)
	if err != nil {
		log.Println("duskmarch: encode frame message:", err)
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for conn := range b.clients {
		if err := conn.WriteMessage(websocket.TextMessage, encoded); err != nil {
			log.Println("duskmarch: websocket write:", err)
		}
	}
}

// viewerMessage is an inbound control message from a browser viewer:
// resize or restart the interactive render.
type viewerMessage struct {
	Kind   string `json:"kind"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ServeHTTP upgrades the connection to a websocket and relays viewer
// messages into the renderer's inbound channel until the client
// disconnects.
func (b *DisplayBridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("duskmarch: websocket upgrade:", err)
		return
	}
	defer conn.Close()

	b.mu.Lock()
	b.clients[conn] = struct{}{}
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		delete(b.clients, conn)
		b.mu.Unlock()
	}()

	for {
		var vm viewerMessage
		if err := conn.ReadJSON(&vm); err != nil {
			return
		}
		switch vm.Kind {
		case "resize":
			b.in <- ResizeMsg(vm.Width, vm.Height)
		case "restart":
			b.in <- RestartMsg()
		}
	}
}
