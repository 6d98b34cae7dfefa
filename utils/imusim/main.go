package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/adammck/cube/components/imu"
	"github.com/adammck/cube/components/motion"
)

var (
	portName = flag.String("port", "-", "the serial port to write to, or - for stdout")
	baud     = flag.Uint("baud", 9600, "the serial baud rate")
	interval = flag.Int("interval", 100, "the time between lines (ms)")
	count    = flag.Int("count", 0, "stop after this many lines (0 = forever)")
)

func main() {
	flag.Parse()

	var w io.Writer = os.Stdout
	if *portName != "-" {
		port, err := imu.OpenPort(*portName, *baud, imu.DefaultReadTimeout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer port.Close()
		w = port
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	t := time.NewTicker(time.Duration(*interval) * time.Millisecond)
	defer t.Stop()

	m := motion.New(time.Now())

	for n := 0; *count == 0 || n < *count; n++ {
		select {
		case <-c:
			log.Infof("caught signal after %d lines", n)
			return

		case now := <-t.C:
			err := imu.WriteLine(w, m.At(now))
			if err != nil {
				log.Errorf("%s (while writing line %d)", err, n)
				return
			}
		}
	}
}
