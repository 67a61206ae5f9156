package plot

import (
	"errors"
	"fmt"
	"io"

	"github.com/JoshPattman/jcode"

	"github.com/katalvlaran/etchpath/point"
)

// JCode converts a continuous path into plotter instructions: set speed,
// travel to the first point, wait, lower the pen, follow the path, wait,
// raise the pen. The pen is lowered exactly once.
func JCode(path []point.Point, cfg JCodeConfig) ([]jcode.Instruction, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	code := []jcode.Instruction{jcode.Speed{Speed: cfg.Speed}}

	var (
		i    int
		p    point.Point
		wp   jcode.Waypoint
		last jcode.Waypoint
	)
	for i, p = range path {
		if p.Dim() != 2 {
			return nil, fmt.Errorf("plot: JCode point %d %v: %w", i, p, ErrNotPlanar)
		}
		wp = jcode.Waypoint{XPos: p.At(0), YPos: p.At(1)}
		if i == 0 || i == len(path)-1 || jcode.Dist(last, wp) >= cfg.PointDistance {
			code = append(code, wp)
			last = wp
		}
		if i == 0 {
			code = append(code, jcode.Delay{Duration: cfg.StartDelay}, jcode.Pen{Mode: jcode.PenDown})
		}
	}
	code = append(code, jcode.Delay{Duration: cfg.EndDelay}, jcode.Pen{Mode: jcode.PenUp})

	return code, nil
}

// WriteJCode encodes instructions to w.
func WriteJCode(w io.Writer, code []jcode.Instruction) error {
	if err := jcode.NewEncoder(w).Write(code...); err != nil {
		return fmt.Errorf("plot: encode jcode: %w", err)
	}

	return nil
}

// ReadJCode decodes instructions from r until EOF.
func ReadJCode(r io.Reader) ([]jcode.Instruction, error) {
	dec := jcode.NewDecoder(r)
	var code []jcode.Instruction
	for {
		ins, err := dec.Read()
		if errors.Is(err, io.EOF) {
			return code, nil
		}
		if err != nil {
			return nil, fmt.Errorf("plot: decode jcode instruction %d: %w", len(code), err)
		}
		code = append(code, ins)
	}
}
