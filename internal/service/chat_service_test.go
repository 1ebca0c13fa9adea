package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGreeting(t *testing.T) {
	greetings := []string{"hi", "Hello", " HEY ", "good morning", "ok"}
	for _, msg := range greetings {
		assert.True(t, isGreeting(msg), "message %q", msg)
	}

	substantive := []string{
		"I want to build a food delivery startup",
		"help me plan a bakery",
	}
	for _, msg := range substantive {
		assert.False(t, isGreeting(msg), "message %q", msg)
	}
}

func TestLooksLikeRoadmap(t *testing.T) {
	positives := []string{
		"Here is your roadmap to success",
		"Step 1: validate the idea",
		"Your go-to-market STRATEGY should be",
		"plan the product launch carefully",
	}
	for _, response := range positives {
		assert.True(t, looksLikeRoadmap(response), "response %q", response)
	}

	assert.False(t, looksLikeRoadmap("Hello! What would you like to build today?"))
}
