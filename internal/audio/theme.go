package audio

// Note frequencies in Hz, rounded.
const (
	C2  = 65
	G2  = 98
	C3  = 131
	D3  = 147
	E3  = 165
	F3  = 175
	G3  = 196
	A3  = 220
	B3  = 247
	C4  = 262
	D4  = 294
	Eb4 = 311
	E4  = 330
	F4  = 349
	G4  = 392
	A4  = 440
	B4  = 494
	C5  = 523
	D5  = 587
	E5  = 659
)

func note(freq, dur, vol float64) NoteEvent {
	return NoteEvent{Frequency: freq, Duration: dur, Volume: vol}
}

func rest(dur float64) NoteEvent {
	return NoteEvent{Duration: dur}
}

// triple repeats a short hit three times with a gap, then holds a long one.
func triple(freq, hitDur, hitVol, gap, holdFreq, holdDur, holdVol, tail float64) []NoteEvent {
	return []NoteEvent{
		note(freq, hitDur, hitVol), rest(gap),
		note(freq, hitDur, hitVol), rest(gap),
		note(freq, hitDur, hitVol), rest(gap),
		note(holdFreq, holdDur, holdVol), rest(tail),
	}
}

func phrase(parts ...[]NoteEvent) []NoteEvent {
	var out []NoteEvent
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// MelodyTheme is the menu melody: an arcade climb, the four-note fate motif
// twice, then orchestral stabs around a short jungle interlude.
func MelodyTheme() []NoteEvent {
	return phrase(
		[]NoteEvent{
			note(C4, 0.2, 0.8), rest(0.05),
			note(D4, 0.15, 0.7), note(E4, 0.15, 0.7),
			note(F4, 0.2, 0.8), rest(0.05),
			note(D4, 0.15, 0.7), note(E4, 0.15, 0.7),
			note(C4, 0.4, 0.9), rest(0.1),
		},
		triple(G3, 0.15, 0.8, 0.05, Eb4, 0.6, 1.0, 0.2),
		triple(F4, 0.15, 0.8, 0.05, D4, 0.6, 1.0, 0.2),
		triple(C3, 0.25, 1.0, 0.15, C3, 0.4, 1.0, 0.3),
		[]NoteEvent{
			note(E3, 0.3, 0.4), note(G3, 0.3, 0.4),
			note(C4, 0.5, 0.5), rest(0.2),
		},
		triple(C3, 0.25, 1.0, 0.15, C3, 0.6, 1.0, 0.4),
	)
}

// BassTheme shadows the melody rhythm on low C, step for step in length.
func BassTheme() []NoteEvent {
	return phrase(
		[]NoteEvent{
			note(C2, 0.2, 0.8), rest(0.05),
			note(C2, 0.15, 0.7), note(C2, 0.15, 0.7),
			note(C2, 0.2, 0.8), rest(0.05),
			note(C2, 0.15, 0.7), note(C2, 0.15, 0.7),
			note(C2, 0.4, 0.9), rest(0.1),
		},
		triple(C2, 0.15, 0.8, 0.05, C2, 0.6, 1.0, 0.2),
		triple(C2, 0.15, 0.8, 0.05, C2, 0.6, 1.0, 0.2),
		triple(C2, 0.25, 1.0, 0.15, C2, 0.4, 1.0, 0.3),
		[]NoteEvent{
			note(C2, 0.3, 0.3), note(G2, 0.3, 0.3),
			note(C2, 0.5, 0.4), rest(0.2),
		},
		triple(C2, 0.25, 1.0, 0.15, C2, 0.6, 1.0, 0.4),
	)
}
