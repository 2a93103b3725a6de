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
	"strings"
	"testing"
)

func TestCountMinSketch(t *testing.T) {
	cms := NewCountMinSketch()

	cms.Add("10", 1)
	cms.Add("10", 1)
	cms.Add("10", 1)
	cms.Add("20", 1)

	if got := cms.Estimate("10"); got != 3 {
		t.Errorf("Estimate(10) = %d; want 3", got)
	}
	if got := cms.Estimate("20"); got != 1 {
		t.Errorf("Estimate(20) = %d; want 1", got)
	}
	if got := cms.Estimate("99"); got != 0 {
		t.Errorf("Estimate(99) = %d; want 0", got)
	}
}

func TestSessionObserve(t *testing.T) {
	session := NewSession(true)

	session.Observe(10, OutcomeInserted)
	session.Observe(10, OutcomeDuplicate)
	session.Observe(20, OutcomeInserted)

	if session.Attempts() != 3 {
		t.Errorf("Expected 3 attempts, got %d", session.Attempts())
	}
	if session.Inserted() != 2 {
		t.Errorf("Expected 2 inserted, got %d", session.Inserted())
	}
	if session.Duplicates() != 1 {
		t.Errorf("Expected 1 duplicate, got %d", session.Duplicates())
	}

	if !session.SeenBefore(10) {
		t.Errorf("Expected 10 to be seen")
	}
	if session.SeenBefore(99) {
		t.Errorf("Expected 99 to be unseen")
	}

	if got := session.AttemptCount(10); got != 2 {
		t.Errorf("AttemptCount(10) = %d; want 2", got)
	}

	records := session.Records()
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	if records[1].Value != 10 || records[1].Outcome != OutcomeDuplicate {
		t.Errorf("Expected the second record to be a duplicate 10, got %+v", records[1])
	}
}

func TestSessionHotKeys(t *testing.T) {
	session := NewSession(true)

	session.Observe(30, OutcomeInserted)
	session.Observe(10, OutcomeInserted)
	session.Observe(10, OutcomeDuplicate)
	session.Observe(10, OutcomeDuplicate)
	session.Observe(20, OutcomeInserted)
	session.Observe(20, OutcomeDuplicate)
	session.Observe(40, OutcomeInserted)

	hot := session.HotKeys(10)
	want := []KeyCount{{10, 3}, {20, 2}, {30, 1}, {40, 1}}
	if len(hot) != len(want) {
		t.Fatalf("Expected %d hot keys, got %d", len(want), len(hot))
	}
	for i, kc := range want {
		if hot[i] != kc {
			t.Errorf("Expected hot key %d to be %+v, got %+v", i, kc, hot[i])
		}
	}

	// The cut keeps the top of the ranking
	top := session.HotKeys(2)
	if len(top) != 2 || top[0].Key != 10 || top[1].Key != 20 {
		t.Errorf("Expected the top two keys 10 and 20, got %+v", top)
	}
}

func TestSessionStats(t *testing.T) {
	session := NewSession(true)

	session.Observe(10, OutcomeInserted)
	session.Observe(10, OutcomeDuplicate)
	session.NoteRejected("banana")

	stats := session.Stats()
	if !strings.Contains(stats, "2 attempts (1 inserted, 1 duplicates, 1 rejected)") {
		t.Errorf("Unexpected stats line: %s", stats)
	}

	rejected := session.Rejected()
	if len(rejected) != 1 || rejected[0] != "banana" {
		t.Errorf("Expected rejected tokens [banana], got %v", rejected)
	}
}

func TestSessionReset(t *testing.T) {
	session := NewSession(true)

	session.Observe(10, OutcomeInserted)
	session.NoteRejected("oops")
	session.Reset()

	if session.Attempts() != 0 || session.Inserted() != 0 || session.RejectedCount() != 0 {
		t.Errorf("Expected an empty session after reset")
	}
	if session.SeenBefore(10) {
		t.Errorf("Expected 10 to be forgotten after reset")
	}
	if len(session.HotKeys(5)) != 0 {
		t.Errorf("Expected no hot keys after reset")
	}
}

func TestSessionFrequencyDisabled(t *testing.T) {
	session := NewSession(false)

	session.Observe(10, OutcomeInserted)
	session.Observe(10, OutcomeDuplicate)

	if got := session.AttemptCount(10); got != 0 {
		t.Errorf("Expected no counts with tracking off, got %d", got)
	}
	if got := session.HotKeys(5); got != nil {
		t.Errorf("Expected no hot keys with tracking off, got %v", got)
	}

	// The attempt log itself stays on
	if session.Attempts() != 2 {
		t.Errorf("Expected 2 attempts, got %d", session.Attempts())
	}
}
