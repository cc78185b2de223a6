// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the config reconciliation procedure.
//
// A [Reconciler] makes sure the desktop application config file exists,
// optionally backs it up, decides how the MCP server should be launched and
// writes that launch descriptor under "mcpServers". It depends only on the
// [store.DocumentStorage] and [adapter.RegistryProbe] abstractions, so every
// step can be exercised with mocks.
package service
