// Package apps wires the packages under internal/pkg into runnable applications.
package apps

import "context"

// App is a runnable application.
type App interface {
	Run(ctx context.Context, args []string) error
}
