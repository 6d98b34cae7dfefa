package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube/webui"
)

var (
	port  = flag.Int("port", 8000, "the port to listen on")
	dir   = flag.String("dir", "./data", "the directory to serve files from")
	debug = flag.Bool("debug", false, "log every request")
)

func main() {
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Infof("serving %s and accepting POST on http://localhost%s", *dir, addr)

	err := http.ListenAndServe(addr, webui.New(os.DirFS(*dir)))
	if err != nil {
		fmt.Printf("error serving: %s\n", err)
		os.Exit(1)
	}
}
