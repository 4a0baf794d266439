package ruff_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRuff(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ruff Suite")
}
