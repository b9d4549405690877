/*
Copyright 2025 Hotloop Contributors

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
// Package common provides shared types and utilities
package common

// Version is the semantic version of the library.
const Version = "0.1.0"

// VersionString is the full version banner printed by the CLI.
const VersionString = "hotloop v" + Version
