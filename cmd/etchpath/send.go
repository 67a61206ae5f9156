package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JoshPattman/jcode"
	"github.com/spf13/cobra"
	"github.com/tarm/serial"

	"github.com/katalvlaran/etchpath/plot"
)

// ErrDeviceClosed is returned when the device stops answering mid-stream.
var ErrDeviceClosed = errors.New("device closed the connection")

var sendCmd = &cobra.Command{
	Use:   "send <file.jcode>",
	Short: "Stream a JCode file to a plotter over serial",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if flags.Changed("port") {
			cfg.Device.Port, _ = flags.GetString("port")
		}
		if flags.Changed("baud") {
			cfg.Device.Baud, _ = flags.GetInt("baud")
		}
		if flags.Changed("buffer") {
			cfg.Device.Buffer, _ = flags.GetInt("buffer")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return runSend(cmd.Context(), args[0])
	},
}

func init() {
	sendCmd.Flags().String("port", "", "serial port of the device (overrides config)")
	sendCmd.Flags().Int("baud", 0, "baud rate (overrides config)")
	sendCmd.Flags().Int("buffer", 0, "instructions in flight on the device (overrides config)")
}

func runSend(ctx context.Context, input string) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open jcode: %w", err)
	}
	code, err := plot.ReadJCode(f)
	f.Close()
	if err != nil {
		return err
	}
	logger.Info("jcode read", "path", input, "instructions", len(code))

	port, err := serial.OpenPort(&serial.Config{Name: cfg.Device.Port, Baud: cfg.Device.Baud})
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.Device.Port, err)
	}
	defer port.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	// A blocked read only returns once the port is closed.
	go func() {
		<-ctx.Done()
		port.Close()
	}()

	logger.Info("connected, waiting for device", "port", cfg.Device.Port, "settle", cfg.Device.Settle)
	select {
	case <-time.After(cfg.Device.Settle):
	case <-ctx.Done():
		return ctx.Err()
	}

	done, err := stream(ctx, newLink(port), code, cfg.Device.Buffer, logger)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("interrupted after %d of %d instructions: %w", done, len(code), ctx.Err())
		}
		return err
	}
	logger.Info("streaming complete", "instructions", done)

	return nil
}

// link is one side of a JCode conversation.
type link interface {
	Send(ins jcode.Instruction) error
	Receive() (jcode.Instruction, error)
}

type rwLink struct {
	send    func(...jcode.Instruction) error
	receive func() (jcode.Instruction, error)
}

func (l rwLink) Send(ins jcode.Instruction) error    { return l.send(ins) }
func (l rwLink) Receive() (jcode.Instruction, error) { return l.receive() }

// newLink speaks JCode over rw.
func newLink(rw io.ReadWriter) link {
	enc := jcode.NewEncoder(rw)
	dec := jcode.NewDecoder(rw)

	return rwLink{send: enc.Write, receive: dec.Read}
}

// stream sends code keeping at most window instructions unacknowledged and
// returns once the device has consumed all of them. It reports how many
// were consumed.
func stream(ctx context.Context, l link, code []jcode.Instruction, window int, log *slog.Logger) (int, error) {
	if window < 1 {
		window = 1
	}
	var (
		next     int
		inflight int
		done     int
		lastPct  = -1
	)
	for done < len(code) {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if next < len(code) && inflight < window {
			if err := l.Send(code[next]); err != nil {
				return done, fmt.Errorf("send instruction %d: %w", next, err)
			}
			next++
			inflight++
			continue
		}

		ins, err := l.Receive()
		if errors.Is(err, io.EOF) {
			return done, ErrDeviceClosed
		}
		if err != nil {
			return done, fmt.Errorf("read device: %w", err)
		}
		switch ins := ins.(type) {
		case jcode.Consumed:
			if inflight == 0 {
				log.Warn("device acknowledged more than was sent")
				continue
			}
			inflight--
			done++
			if pct := done * 100 / len(code); pct/10 != lastPct/10 {
				lastPct = pct
				log.Info("streaming", "percent", pct, "consumed", done, "total", len(code))
			}
		case jcode.Log:
			log.Info("device", "message", ins.Message)
		default:
			log.Warn("unexpected instruction from device", "type", fmt.Sprintf("%T", ins))
		}
	}

	return done, nil
}
