package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"learnwords/internal/service"
)

func TestTrainerRegistry(t *testing.T) {
	registry := service.NewTrainerRegistry(newMemWordRepo(), newMemSettingsRepo())

	first := registry.Trainer(1)
	assert.NotNil(t, first)

	// Same user gets the same trainer; another user gets a fresh one.
	assert.Same(t, first, registry.Trainer(1))
	assert.NotSame(t, first, registry.Trainer(2))

	registry.Remove(1)
	assert.NotSame(t, first, registry.Trainer(1))
}
