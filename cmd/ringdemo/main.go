// Command ringdemo pushes a series of temperature readings through a
// circular buffer, dumping its state after every step, and then prints
// the summary statistics of what the buffer retained.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	circularbuffer "github.com/jonoton/go-circularbuffer"
)

type config struct {
	capacity int
	delay    time.Duration
	dump     bool
	values   []float64
}

func parseValues(s string) ([]float64, error) {
	var values []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %q: %w", field, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func run(cfg config, w io.Writer) error {
	temps, err := circularbuffer.New[float64](cfg.capacity)
	if err != nil {
		return err
	}

	step := func(label string) error {
		if cfg.dump {
			fmt.Fprintln(w)
			if err := temps.Dump(w, label); err != nil {
				return fmt.Errorf("dump %q: %w", label, err)
			}
		}
		time.Sleep(cfg.delay)
		return nil
	}

	if err := step("start (empty)"); err != nil {
		return err
	}
	for _, v := range cfg.values {
		label := fmt.Sprintf("push_back(%v)", v)
		if temps.IsFull() {
			label += " -> overwrite oldest"
		}
		temps.PushBack(v)
		if err := step(label); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "size = %d\n", temps.Len())
	fmt.Fprintf(w, "capacity = %d\n", temps.Cap())
	fmt.Fprintf(w, "empty = %t\n", temps.IsEmpty())

	if maxTemp, ok := circularbuffer.Max(temps.All()); ok {
		fmt.Fprintf(w, "maxTemp = %v\n", maxTemp)
	}
	if avgTemp, ok := circularbuffer.Mean(temps.All()); ok {
		fmt.Fprintf(w, "avgTemp = %.2f\n", avgTemp)
	}

	// An empty run is reported, not fatal.
	front, err := temps.Front()
	if errors.Is(err, circularbuffer.ErrEmpty) {
		log.Printf("no readings retained: %v", err)
		return nil
	}
	back, _ := temps.Back()
	fmt.Fprintf(w, "front = %v // oldest\n", front)
	fmt.Fprintf(w, "back = %v // newest\n", back)

	fmt.Fprint(w, "all:")
	for v := range temps.All() {
		fmt.Fprintf(w, " %v", v)
	}
	fmt.Fprintln(w)
	return nil
}

func main() {
	capacity := flag.Int("capacity", 5, "Number of readings the buffer retains")
	delay := flag.Duration("delay", 0, "Pause between steps (e.g. 700ms)")
	dump := flag.Bool("dump", true, "Print the buffer state after each step")
	values := flag.String("values", "23.5,24.1,23.8,25.2,24.7,26.1", "Comma-separated readings to push")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("ringdemo: ")

	vals, err := parseValues(*values)
	if err != nil {
		log.Fatalf("invalid -values: %v", err)
	}

	cfg := config{
		capacity: *capacity,
		delay:    *delay,
		dump:     *dump,
		values:   vals,
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
