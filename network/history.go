package network

import "github.com/automoto/ashgrave/shared/messages"

const historySize = 64

// InputHistory is a ring buffer of sent inputs awaiting server
// acknowledgement. The server echoes the last applied sequence in the
// player's actor component.
type InputHistory struct {
	history [historySize]messages.PlayerInput
	nextSeq uint32
}

// Store saves an input under its sequence number.
func (h *InputHistory) Store(input messages.PlayerInput) {
	h.history[input.Sequence%historySize] = input
	h.nextSeq = input.Sequence + 1
}

// Get retrieves a stored input. Returns false if not found or if the slot has
// been overwritten.
func (h *InputHistory) Get(seq uint32) (messages.PlayerInput, bool) {
	input := h.history[seq%historySize]
	if input.Actions == nil || input.Sequence != seq {
		return messages.PlayerInput{}, false
	}
	return input, true
}

// NextSeq returns the sequence number for the next input. Sequences start at 1
// so zero means nothing was acknowledged.
func (h *InputHistory) NextSeq() uint32 {
	if h.nextSeq == 0 {
		return 1
	}
	return h.nextSeq
}

// Unacknowledged returns the stored inputs newer than lastAcked, oldest first.
func (h *InputHistory) Unacknowledged(lastAcked uint32) []messages.PlayerInput {
	var out []messages.PlayerInput
	for seq := lastAcked + 1; seq < h.nextSeq; seq++ {
		if input, ok := h.Get(seq); ok {
			out = append(out, input)
		}
	}
	return out
}
