// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the values exchanged with the Eagle local API and
// read from Eagle library folders: item metadata records, folders,
// application and library info, request payloads and the response envelope.
package models
