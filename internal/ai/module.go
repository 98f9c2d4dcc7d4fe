package ai

type Module struct {
	Svc Generator
}
