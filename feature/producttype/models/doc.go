// Package models defines the product-type documents, API payloads and the
// persisted plan record used by the producttype feature.
package models
