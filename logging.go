// Copyright 2025 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package braille

import "go.uber.org/zap"

// nopLogger is substituted whenever an Engine is built without an
// explicit logger, so the core never requires one to function -- the
// same "no fatal kinds" stance spec.md takes for error handling.
func nopLogger() *zap.Logger {
	return zap.NewNop()
}
