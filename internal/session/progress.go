package session

// Progress tracks answers given in the current game.
type Progress struct {
	Answered int
	Correct  int
	Accuracy float64 // Correct / Answered
}

// Record adds one answer.
func (p *Progress) Record(correct bool) {
	p.Answered++
	if correct {
		p.Correct++
	}
	p.Accuracy = float64(p.Correct) / float64(p.Answered)
}
