package cmd

import (
	"os"

	"github.com/leohubert/bunny-stream-go/internal/output"
)

func Usage() {
	p := output.NewPrinter(os.Stdout)

	p.Heading("bunny-stream - toolbox for a Bunny Stream video library")
	p.Line("")
	p.Line("usage: bunny-stream <command> [arguments]")
	p.Line("")
	p.Line("commands:")
	p.KV("videos", "list, get, create, update, delete, thumbnail, play, heatmap, embed")
	p.KV("collections", "list, get, create, rename, delete")
	p.KV("upload", "upload a local video file")
	p.KV("fetch", "let the service download a video from a URL")
	p.KV("captions", "add, rm")
	p.KV("encode", "reencode, repackage, codec, resolutions, cleanup, transcribe, wait")
	p.KV("stats", "play statistics of the library")
	p.KV("open", "open a video's embed page in the browser")
	p.KV("help", "this overview")
	p.Line("")
	p.Line("environment: BUNNY_ACCESS_KEY, BUNNY_LIBRARY_ID, BUNNY_ENDPOINT,")
	p.Line("             BUNNY_TIMEOUT, LOG_FORMAT (pretty|json), LOG_LEVEL")
}
