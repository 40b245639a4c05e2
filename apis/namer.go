/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// Namer lets an enum value report its own name, bypassing table lookups.
// Implementations must be cheap, allocation-free where possible and safe
// for concurrent use.
type Namer interface {
	// EnumName returns the display name of the receiver.
	EnumName() string
}

// NamerFunc adapts a plain function to the Namer interface.
type NamerFunc func() string

// EnumName implements Namer for NamerFunc.
func (f NamerFunc) EnumName() string {
	return f()
}
