package engine

import "math/rand"

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

type recordingRenderer struct {
	live     map[EntityID]Sprite
	created  []EntityID
	updated  int
	released []EntityID
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{live: make(map[EntityID]Sprite)}
}

func (r *recordingRenderer) Create(s Sprite) {
	r.live[s.ID] = s
	r.created = append(r.created, s.ID)
}

func (r *recordingRenderer) Update(s Sprite) {
	r.live[s.ID] = s
	r.updated++
}

func (r *recordingRenderer) Destroy(id EntityID) {
	delete(r.live, id)
	r.released = append(r.released, id)
}
