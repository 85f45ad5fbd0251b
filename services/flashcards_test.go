package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFlashcards(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want []Card
	}{
		{
			name: "is and are sentences",
			text: "Photosynthesis is the process plants use to make food. Cells are the basic units of life.",
			n:    2,
			want: []Card{
				{Question: "What is Photosynthesis?", Answer: "the process plants use to make food."},
				{Question: "What is Cells?", Answer: "the basic units of life."},
			},
		},
		{
			name: "is is preferred over an earlier are",
			text: "Dogs are animals and the sky is blue today.",
			n:    1,
			want: []Card{
				{Question: "What is Dogs are animals and the sky?", Answer: "blue today."},
			},
		},
		{
			name: "subject punctuation trimmed",
			text: ", Gravity, is a force that pulls objects together.",
			n:    1,
			want: []Card{
				{Question: "What is Gravity?", Answer: "a force that pulls objects together."},
			},
		},
		{
			name: "short sentences and capitalised copulas are ignored",
			text: "Water is wet. This Is not matched by the rule at all.",
			n:    2,
			want: []Card{
				{Question: "Key point 1?", Answer: "Review your notes for this topic."},
				{Question: "Key point 2?", Answer: "Review your notes for this topic."},
			},
		},
		{
			name: "padding continues after real cards",
			text: "An atom is the smallest unit of matter.",
			n:    3,
			want: []Card{
				{Question: "What is An atom?", Answer: "the smallest unit of matter."},
				{Question: "Key point 1?", Answer: "Review your notes for this topic."},
				{Question: "Key point 2?", Answer: "Review your notes for this topic."},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateFlashcards(tt.text, tt.n))
		})
	}
}

func TestGenerateFlashcards_StopsAtN(t *testing.T) {
	text := "A cat is a small furry animal. A dog is a loyal furry animal. A cow is a large farm animal."
	got := GenerateFlashcards(text, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "What is A cat?", got[0].Question)
	assert.Equal(t, "What is A dog?", got[1].Question)
}

func TestGenerateFlashcards_DefaultCount(t *testing.T) {
	assert.Len(t, GenerateFlashcards("", 0), DefaultFlashcardCount)
	assert.Len(t, GenerateFlashcards("", -3), DefaultFlashcardCount)
}

func TestGenerateFlashcards_AlwaysExactlyN(t *testing.T) {
	texts := []string{
		"",
		"no copula here at all in this line.",
		"Energy is the capacity to do work. Mass is a measure of inertia in physics.",
	}
	for _, text := range texts {
		for _, n := range []int{1, 2, 5, 12} {
			cards := GenerateFlashcards(text, n)
			require.Len(t, cards, n)
			for _, c := range cards {
				assert.NotEmpty(t, c.Question)
				assert.NotEmpty(t, c.Answer)
				assert.LessOrEqual(t, len([]rune(c.Question)), 180)
				assert.LessOrEqual(t, len([]rune(c.Answer)), 300)
			}
		}
	}
}
