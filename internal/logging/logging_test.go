package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init("debug", &buf)

	assert.Equal(t, logrus.DebugLevel, Get().GetLevel())
	Get().WithField("op", "mul").Debug("selected path")
	assert.Contains(t, buf.String(), "selected path")
	assert.Contains(t, buf.String(), "op=mul")
}

func TestInit_BadLevel(t *testing.T) {
	var buf bytes.Buffer
	Init("loud", &buf)

	assert.Equal(t, logrus.InfoLevel, Get().GetLevel())
}
