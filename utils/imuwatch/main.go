package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/adammck/cube/components/imu"
)

var (
	portName = flag.String("port", "/dev/ttyACM0", "the serial port path")
	baud     = flag.Uint("baud", 9600, "the serial baud rate")
	raw      = flag.Bool("raw", false, "print lines as received")
)

// Prints each orientation read from the port, to check the wiring before
// starting the viewer.
func main() {
	flag.Parse()

	port, err := imu.OpenPort(*portName, *baud, imu.DefaultReadTimeout)
	if err != nil {
		fmt.Printf("Error opening port: %s\n", err)
		os.Exit(1)
	}
	defer port.Close()

	br := bufio.NewReader(port)
	partial := ""

	for {
		chunk, err := br.ReadString('\n')
		partial += chunk

		// Read timeouts show up as EOF.
		if errors.Is(err, io.EOF) {
			continue
		}
		if err != nil {
			fmt.Printf("Error reading: %s\n", err)
			os.Exit(1)
		}

		line := partial
		partial = ""

		if *raw {
			fmt.Printf("%q\n", line)
		}

		x, y, err := imu.ParseLine(line)
		if err != nil {
			fmt.Println(err)
			continue
		}

		fmt.Printf("X=%.0f Y=%.0f\n", x, y)
	}
}
