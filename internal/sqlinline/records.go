package sqlinline

const QEnsureRecordsTable = `--sql 4e1d9c2a-8f6b-4a3e-9d5c-2b7e0a4c8f1d
create table if not exists records (
    bucket integer not null,
    key    text not null,
    value  jsonb not null,
    pos    bigint generated always as identity,
    primary key (bucket, key)
);
`

const QInsertRecord = `--sql 7a3f5e1b-2d8c-4f6a-b1e9-5c0d7a2e4b8f
insert into records (bucket, key, value)
values ($1, $2, $3::jsonb)
on conflict (bucket, key) do nothing;
`

const QSelectRecord = `--sql 0c8e2a6d-4b1f-4e7a-8d3c-9f5b1e7a3c0d
select value
from records
where bucket = $1 and key = $2;
`

const QListRecords = `--sql 6b0d4f8a-1e5c-4a9d-b7f3-0a8c2e6d4b1f
select value
from records
where bucket = $1
order by pos asc;
`
