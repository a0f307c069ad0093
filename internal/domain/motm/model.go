package motm

// Count is the running man-of-the-match tally for one player on one team.
// A player who transfers and wins again gets a separate row for the new
// team; the tallies never merge.
type Count struct {
	Player string
	Team   string
	Count  int
}
