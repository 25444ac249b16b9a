// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package library reads an Eagle library straight from disk.
//
// An Eagle library keeps one folder per item, each holding a metadata.json
// record. [Scanner] collects those records in one pass and [Watcher]
// reports them as Eagle creates or rewrites them. Neither needs the Eagle
// application to be running.
package library
