// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"encoding/json"
	"fmt"
)

// invalidEnumError is returned when a JSON payload names an enum variant
// that does not exist. It is used by the small closed enums (Direction,
// Orientation, State) so a malformed save file fails the read rather than
// silently defaulting (spec.md §7: "the engine is pessimistic").
type invalidEnumError struct {
	kind  string
	value string
}

func (e *invalidEnumError) Error() string {
	return fmt.Sprintf("stackline: invalid %s value %q", e.kind, e.value)
}

func marshalEnumName(name string) ([]byte, error) {
	return json.Marshal(name)
}

func unmarshalEnumName(data []byte) (string, error) {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return "", err
	}
	return name, nil
}
