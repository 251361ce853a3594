// Package domain contains the core business entities of the application:
// users, the projects they own, and the tasks inside those projects.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
