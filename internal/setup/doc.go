// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package setup implements the runtime shared by both setup commands.
//
// It turns the loaded settings into reconcile options, runs the
// [service.Reconciler] once and reports the outcome: step messages and hints
// go to the logger, and the plain-text variant additionally prints boxed
// summaries to the console.
package setup
