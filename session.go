// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"time"

	"github.com/willf/bloom"
)

const (
	SketchWidth = 1024 // Width of Count-Min Sketch
	SketchDepth = 4    // Depth of Count-Min Sketch

	sessionBloomBits   = 1 << 16
	sessionBloomHashes = 5

	maxRejectedKept = 20
)

// Outcome classifies what an offered value did to the tree
type Outcome int

const (
	OutcomeInserted Outcome = iota
	OutcomeDuplicate
)

func (o Outcome) String() string {
	if o == OutcomeDuplicate {
		return "duplicate"
	}
	return "inserted"
}

// Record is one observed insertion attempt
type Record struct {
	Value     int
	Outcome   Outcome
	Timestamp time.Time
}

// KeyCount pairs a key with its estimated attempt count
type KeyCount struct {
	Key   int
	Count int32
}

// CountMinSketch estimates per-key attempt counts in fixed memory
type CountMinSketch struct {
	table [SketchDepth][SketchWidth]int32
}

func NewCountMinSketch() *CountMinSketch {
	return &CountMinSketch{}
}

func (cms *CountMinSketch) hash(item string, row int) uint32 {
	h := fnv.New32a()
	h.Write([]byte(item))
	h.Write([]byte{byte(row)}) // Salt with row number
	return h.Sum32() % SketchWidth
}

func (cms *CountMinSketch) Add(item string, count int32) {
	for i := 0; i < SketchDepth; i++ {
		pos := cms.hash(item, i)
		cms.table[i][pos] += count
	}
}

func (cms *CountMinSketch) Estimate(item string) int32 {
	min := cms.table[0][cms.hash(item, 0)]
	for i := 1; i < SketchDepth; i++ {
		pos := cms.hash(item, i)
		if cms.table[i][pos] < min {
			min = cms.table[i][pos]
		}
	}
	return min
}

// Session tracks what happened to the tree since launch. The bloom
// filter answers "was this key offered before" without touching the
// tree, and the sketch keeps attempt counts without a per-key map.
type Session struct {
	startedAt      time.Time
	records        []Record
	seen           *bloom.BloomFilter
	counts         *CountMinSketch
	inserted       int
	duplicates     int
	rejected       []string
	rejectedCount  int
	trackFrequency bool
}

func NewSession(trackFrequency bool) *Session {
	return &Session{
		startedAt:      time.Now(),
		seen:           bloom.New(sessionBloomBits, sessionBloomHashes),
		counts:         NewCountMinSketch(),
		trackFrequency: trackFrequency,
	}
}

// Observe records one insertion attempt and its outcome
func (s *Session) Observe(value int, outcome Outcome) {
	item := strconv.Itoa(value)
	s.seen.AddString(item)
	if s.trackFrequency {
		s.counts.Add(item, 1)
	}

	s.records = append(s.records, Record{
		Value:     value,
		Outcome:   outcome,
		Timestamp: time.Now(),
	})

	if outcome == OutcomeDuplicate {
		s.duplicates++
	} else {
		s.inserted++
	}
}

// NoteRejected records input that never parsed to a key
func (s *Session) NoteRejected(token string) {
	s.rejectedCount++
	if len(s.rejected) < maxRejectedKept {
		s.rejected = append(s.rejected, token)
	}
}

// SeenBefore reports whether the value was probably offered earlier in
// this session. False positives are possible, false negatives are not.
func (s *Session) SeenBefore(value int) bool {
	return s.seen.TestString(strconv.Itoa(value))
}

// AttemptCount estimates how often the value was offered. The estimate
// never undercounts.
func (s *Session) AttemptCount(value int) int32 {
	if !s.trackFrequency {
		return 0
	}
	return s.counts.Estimate(strconv.Itoa(value))
}

// HotKeys returns the most offered keys, highest count first
func (s *Session) HotKeys(n int) []KeyCount {
	if !s.trackFrequency {
		return nil
	}

	distinct := make(map[int]bool, len(s.records))
	for _, record := range s.records {
		distinct[record.Value] = true
	}

	ranked := make([]KeyCount, 0, len(distinct))
	for key := range distinct {
		ranked = append(ranked, KeyCount{Key: key, Count: s.AttemptCount(key)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Key < ranked[j].Key
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func (s *Session) Attempts() int {
	return len(s.records)
}

func (s *Session) Inserted() int {
	return s.inserted
}

func (s *Session) Duplicates() int {
	return s.duplicates
}

func (s *Session) RejectedCount() int {
	return s.rejectedCount
}

// Rejected returns up to maxRejectedKept of the rejected tokens
func (s *Session) Rejected() []string {
	result := make([]string, len(s.rejected))
	copy(result, s.rejected)
	return result
}

func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Records returns the attempt log in arrival order
func (s *Session) Records() []Record {
	result := make([]Record, len(s.records))
	copy(result, s.records)
	return result
}

// Stats summarizes the session in one line
func (s *Session) Stats() string {
	return fmt.Sprintf("Session Stats: %d attempts (%d inserted, %d duplicates, %d rejected) since %s",
		s.Attempts(), s.inserted, s.duplicates, s.rejectedCount, FormatTime(s.startedAt))
}

// Reset drops everything and restarts the clock
func (s *Session) Reset() {
	s.startedAt = time.Now()
	s.records = nil
	s.seen = bloom.New(sessionBloomBits, sessionBloomHashes)
	s.counts = NewCountMinSketch()
	s.inserted = 0
	s.duplicates = 0
	s.rejected = nil
	s.rejectedCount = 0
}
