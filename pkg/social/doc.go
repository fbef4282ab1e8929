// Package social composes fake social media posts.
package social
