package domain

// Transition computes the next state of a cell from its own state and the state of its
// left neighbour. The neighbour is never modified.
//
// A Boolean cell facing a disagreeing Boolean neighbour kick-starts a signal by capturing
// its own symbol. Signals travel right, copying color and memory, and capture symbols not
// yet represented in memory. When a cell meets a signal of its own color it either flips
// color (the neighbour's memory saw both symbols) or resolves to the symbol left in memory.
//
// Captured is never cleared: a cell captures its original symbol at most once per run.
func Transition(self, left Cell) Cell {
	if !left.Intermediate {
		if !self.Intermediate {
			if self.Value == left.Value {
				return self
			}
			self.Intermediate = true
			self.remember(self.Value)
			self.Captured = true
			return self
		}

		// a resolved value overwrites the signal
		self.Intermediate = false
		self.Value = left.Value
		return self
	}

	if !self.Intermediate || self.Color != left.Color {
		self.Intermediate = true
		self.Color = left.Color
		self.Mem0 = left.Mem0
		self.Mem1 = left.Mem1

		if self.Captured || self.Holds(self.Value) {
			return self
		}
		self.Captured = true
		self.remember(self.Value)
		return self
	}

	// same color: this cell is the head of the signal
	if left.Mem0 && left.Mem1 {
		self.Color = !self.Color
		self.Mem0 = false
		self.Mem1 = false
		return self
	}

	// Resolve. Missing evidence falls back to 0 so an inconsistent
	// signal still converges and shows up as a wrong verdict.
	self.Intermediate = false
	self.Value = left.Mem1
	return self
}
