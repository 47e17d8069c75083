package parallel

import "context"

// SerialName is the registry name of Serial.
const SerialName = "serial"

// Serial runs every index in order on the calling goroutine.
type Serial struct{}

func (Serial) Name() string { return SerialName }

func (Serial) Run(ctx context.Context, chunks [][]int, task Task) error {
	for _, chunk := range chunks {
		for _, i := range chunk {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := task(ctx, i); err != nil {
				return err
			}
		}
	}
	return nil
}
