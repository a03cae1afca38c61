// Command duskmarch-serve runs the interactive scheduler (spec §4.7) behind
// a websocket bridge, standing in for the out-of-scope GPU display layer so
// the renderer can be driven from a browser without a native window
// toolkit.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/nkall/duskmarch/pkg/renderer"
	"github.com/nkall/duskmarch/pkg/sceneio"
)

func main() {
	port := flag.Int("port", 8080, "port to serve the websocket bridge on")
	scenePath := flag.String("scene", "", "initial scene to load (required)")
	width := flag.Int("width", 1280, "initial window width")
	height := flag.Int("height", 720, "initial window height")
	flag.Parse()

	if *scenePath == "" {
		log.Fatal("duskmarch-serve: -scene is required")
	}

	sc, err := sceneio.Load(*scenePath)
	if err != nil {
		log.Fatalf("duskmarch-serve: failed to load scene: %v", err)
	}

	in := make(chan renderer.RenderInMsg, 16)
	out := make(chan renderer.RenderOutMsg, 16)

	ir := renderer.NewInteractiveRenderer(in, out)
	go ir.Run()

	bridge := renderer.NewDisplayBridge(ir.Chain, in)
	go func() {
		for msg := range out {
			bridge.Broadcast(msg.Scale)
		}
	}()

	in <- renderer.ResizeMsg(*width, *height)
	in <- renderer.SceneChangeMsg(sc)

	http.Handle("/ws", bridge)
	log.Printf("duskmarch-serve listening on http://localhost:%d/ws", *port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), nil); err != nil {
		log.Fatalf("duskmarch-serve: %v", err)
	}
}
