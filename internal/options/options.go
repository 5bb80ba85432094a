package options

import (
	"github.com/foundry-tools/foundry/internal/plugins"
)

// Language is the source language of the project.
type Language string

const (
	TypeScript Language = "TypeScript"
	JavaScript Language = "JavaScript"
)

// Environment is a runtime the project's code targets.
type Environment string

const (
	Node    Environment = "Node"
	Browser Environment = "Browser"
)

// Framework is an application framework with dedicated tooling.
type Framework string

const (
	NextJS Framework = "Next.js"
	React  Framework = "React"
)

// Options is the fully resolved configuration intent.
type Options struct {
	Language     Language       `json:"language"`
	Environments []Environment  `json:"environments"`
	Frameworks   []Framework    `json:"frameworks"`
	Plugins      []plugins.Name `json:"plugins"`
	OpenSource   bool           `json:"openSource"`
	PackageType  string         `json:"packageType,omitempty"`
}

// HasEnvironment reports whether env is among the resolved environments.
func (o Options) HasEnvironment(env Environment) bool {
	for _, e := range o.Environments {
		if e == env {
			return true
		}
	}
	return false
}

// HasFramework reports whether fw is among the resolved frameworks.
func (o Options) HasFramework(fw Framework) bool {
	for _, f := range o.Frameworks {
		if f == fw {
			return true
		}
	}
	return false
}

// HasPlugin reports whether name is among the resolved plugins.
func (o Options) HasPlugin(name plugins.Name) bool {
	for _, p := range o.Plugins {
		if p == name {
			return true
		}
	}
	return false
}
