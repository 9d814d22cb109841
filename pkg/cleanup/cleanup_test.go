package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/cookstreak/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUpOrder(t *testing.T) {
	var order []string
	job := func(name string, err error) *cleanup.Job {
		return &cleanup.Job{Name: name, F: func() error {
			order = append(order, name)
			return err
		}}
	}
	cleanup.Register(job("pool", nil))
	cleanup.Register(job("waker", errors.New("already stopped")))
	cleanup.Register(job("sessions", nil))

	cleanup.CleanUp()
	assert.Equal(t, []string{"sessions", "waker", "pool"}, order)

	// jobs run once
	cleanup.CleanUp()
	assert.Len(t, order, 3)
}
