package plugin

import (
	"context"
	"testing"
)

type stubAction struct {
	name string
	tag  string
}

func (a *stubAction) Info() ActionInfo {
	return ActionInfo{ComponentInfo: ComponentInfo{Kind: KindAction, Name: a.name, Description: a.tag}}
}

func (a *stubAction) Execute(_ context.Context, _ Request) (Response, error) {
	return Response{OK: true, Summary: a.tag}, nil
}

type stubCommand struct {
	name string
}

func (c *stubCommand) Info() CommandInfo {
	return CommandInfo{ComponentInfo: ComponentInfo{Kind: KindCommand, Name: c.name}, Pattern: "^/" + c.name + "$"}
}

func (c *stubCommand) Execute(_ context.Context, _ Request) (Response, error) {
	return Response{OK: true}, nil
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	r.RegisterAction(&stubAction{name: "b"})
	r.RegisterAction(&stubAction{name: "a"})
	r.RegisterCommand(&stubCommand{name: "z"})
	r.RegisterCommand(&stubCommand{name: "y"})

	set := r.ComponentSet()
	if set.Actions[0].Name != "b" || set.Actions[1].Name != "a" {
		t.Errorf("actions out of registration order: %+v", set.Actions)
	}
	if set.Commands[0].Name != "z" || set.Commands[1].Name != "y" {
		t.Errorf("commands out of registration order: %+v", set.Commands)
	}
}

func TestRegistryReplaceKeepsPosition(t *testing.T) {
	r := NewRegistry()
	r.RegisterAction(&stubAction{name: "first", tag: "v1"})
	r.RegisterAction(&stubAction{name: "second"})
	r.RegisterAction(&stubAction{name: "first", tag: "v2"})

	actions := r.Actions()
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	if actions[0].Info().Name != "first" || actions[0].Info().Description != "v2" {
		t.Errorf("expected replacement in place, got %+v", actions[0].Info())
	}

	got, ok := r.GetAction("first")
	if !ok || got.Info().Description != "v2" {
		t.Errorf("lookup returned stale handler: %+v", got)
	}
}

func TestRegistryLookupMiss(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.GetAction("missing"); ok {
		t.Error("expected action lookup miss")
	}
	if _, ok := r.GetCommand("missing"); ok {
		t.Error("expected command lookup miss")
	}
}

func TestComponentSetInfos(t *testing.T) {
	set := ComponentSet{
		Actions:  []ActionInfo{{ComponentInfo: ComponentInfo{Kind: KindAction, Name: "a"}}},
		Commands: []CommandInfo{{ComponentInfo: ComponentInfo{Kind: KindCommand, Name: "c"}}},
	}

	infos := set.Infos()
	if len(infos) != 2 || infos[0].Name != "a" || infos[1].Name != "c" {
		t.Errorf("unexpected infos: %+v", infos)
	}
}
